package termread

import (
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// Parse parses command line arguments into options, returning the
// remaining positional arguments.
func (options *CLIOptions) Parse(args []string) ([]string, error) {
	p := flags.NewParser(options, flags.Default)
	rest, err := p.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "invalid command line options")
	}
	return rest, nil
}
