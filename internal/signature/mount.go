// SPDX-License-Identifier: MPL-2.0

package signature

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// UseString renders the cobra Use line for this command: the given leaf
// word followed by one placeholder per positional argument.
func (c *Command) UseString(word string) string {
	use := word
	for _, arg := range c.Args {
		name := arg.Name
		if arg.Variadic {
			name += "..."
		}
		if arg.Required {
			use += fmt.Sprintf(" <%s>", name)
		} else {
			use += fmt.Sprintf(" [%s]", name)
		}
	}
	return use
}

// Validator returns the cobra positional-argument validator enforcing this
// command's arity.
func (c *Command) Validator() cobra.PositionalArgs {
	required := 0
	for _, arg := range c.Args {
		if arg.Required {
			required++
		}
	}
	if len(c.Args) > 0 && c.Args[len(c.Args)-1].Variadic {
		if required > 0 {
			return cobra.MinimumNArgs(required)
		}
		return cobra.ArbitraryArgs
	}
	if required == len(c.Args) {
		return cobra.ExactArgs(required)
	}
	return cobra.RangeArgs(required, len(c.Args))
}

// RegisterFlags declares this command's flags on the given flag set with
// their declared types and defaults, and marks required flags as such.
func (c *Command) RegisterFlags(fs *pflag.FlagSet) error {
	for _, flag := range c.Flags {
		usage := flagUsage(flag)
		switch flag.GetType() {
		case FlagTypeBool:
			def := flag.Default == "true"
			fs.BoolP(flag.Name, flag.Short, def, usage)
		case FlagTypeInt:
			def := 0
			if flag.Default != "" {
				def, _ = strconv.Atoi(flag.Default)
			}
			fs.IntP(flag.Name, flag.Short, def, usage)
		case FlagTypeFloat:
			def := 0.0
			if flag.Default != "" {
				def, _ = strconv.ParseFloat(flag.Default, 64)
			}
			fs.Float64P(flag.Name, flag.Short, def, usage)
		default:
			fs.StringP(flag.Name, flag.Short, flag.Default, usage)
		}
		if flag.Required {
			if err := cobra.MarkFlagRequired(fs, flag.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// flagUsage renders the one-line help text for a declared flag.
func flagUsage(flag Flag) string {
	if flag.Required {
		return fmt.Sprintf("%s value (required)", flag.GetType())
	}
	if flag.GetType() == FlagTypeBool {
		return ""
	}
	return fmt.Sprintf("%s value", flag.GetType())
}

// ExtractValues collects the command's argument and flag values into a
// name-keyed map. Positional arguments map by declaration order, the
// variadic tail as a string slice (empty when no arguments remain). Flag
// values carry their declared types; unset flags contribute their
// defaults.
func (c *Command) ExtractValues(fs *pflag.FlagSet, args []string) (map[string]any, error) {
	values := make(map[string]any, len(c.Args)+len(c.Flags))

	for i, arg := range c.Args {
		if arg.Variadic {
			rest := []string{}
			if i < len(args) {
				rest = append(rest, args[i:]...)
			}
			values[arg.Name] = rest
			break
		}
		if i < len(args) {
			values[arg.Name] = args[i]
		}
	}

	for _, flag := range c.Flags {
		var (
			value any
			err   error
		)
		switch flag.GetType() {
		case FlagTypeBool:
			value, err = fs.GetBool(flag.Name)
		case FlagTypeInt:
			value, err = fs.GetInt(flag.Name)
		case FlagTypeFloat:
			value, err = fs.GetFloat64(flag.Name)
		default:
			value, err = fs.GetString(flag.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading flag --%s: %w", flag.Name, err)
		}
		values[flag.Name] = value
	}

	return values, nil
}
