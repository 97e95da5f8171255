// SPDX-License-Identifier: MPL-2.0

// Package signature parses the command signature DSL scripts declare their
// commands with. A signature is a single line naming the command path,
// positional arguments and flags:
//
//	db migrate <version> [targets...] [--force] [-n|--dry-run] [--env=dev] --times=<int>
//
// Leading bare words form the command path. <name> is a required
// positional, [name] an optional one; a trailing "..." marks the last
// positional as variadic. Flags in brackets are optional: bare for
// booleans, with a default literal (type inferred) or a <type> placeholder
// for valued flags. An unbracketed --flag=<type> is a required flag.
package signature

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// FlagTypeString is the flag type for string values.
	FlagTypeString FlagType = "string"
	// FlagTypeBool is for boolean flags (true/false).
	FlagTypeBool FlagType = "bool"
	// FlagTypeInt is for integer flags.
	FlagTypeInt FlagType = "int"
	// FlagTypeFloat is for floating-point flags.
	FlagTypeFloat FlagType = "float"
)

// ErrInvalidSignature is the sentinel wrapped by SignatureError.
var ErrInvalidSignature = errors.New("invalid signature")

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	intRe   = regexp.MustCompile(`^-?[0-9]+$`)
	floatRe = regexp.MustCompile(`^-?[0-9]*\.[0-9]+$`)
)

type (
	// FlagType is the data type of a flag value.
	FlagType string

	// SignatureError describes why a signature failed to parse. It wraps
	// ErrInvalidSignature for errors.Is() compatibility.
	SignatureError struct {
		Token  string
		Reason string
	}

	// Argument is one positional argument of a command.
	Argument struct {
		// Name binds the argument's value for handler injection.
		Name string
		// Required arguments must be supplied by the caller.
		Required bool
		// Variadic marks the last positional, which absorbs all remaining
		// arguments as a string slice.
		Variadic bool
	}

	// Flag is one command-line flag of a command.
	Flag struct {
		// Name is the long flag name (without dashes).
		Name string
		// Short is a single-letter alias, when declared.
		Short string
		// Type is the flag's value type.
		Type FlagType
		// Default is the declared default literal, empty when none.
		Default string
		// Required flags must be supplied by the caller.
		Required bool
	}

	// Command is a parsed signature.
	Command struct {
		// Path is the command's name path; empty for a script's main
		// command.
		Path []string
		// Args are the positional arguments, in declaration order.
		Args []Argument
		// Flags are the declared flags, in declaration order.
		Flags []Flag
	}
)

// Error implements the error interface for SignatureError.
func (e *SignatureError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid signature: %s", e.Reason)
	}
	return fmt.Sprintf("invalid signature token %q: %s", e.Token, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *SignatureError) Unwrap() error {
	return ErrInvalidSignature
}

// GetType returns the effective flag type, defaulting to string.
func (f *Flag) GetType() FlagType {
	if f.Type == "" {
		return FlagTypeString
	}
	return f.Type
}

// Parse parses a signature line into its command path, arguments and
// flags. Whitespace separates tokens; token order is path words first, then
// any mix of argument and flag tokens.
func Parse(sig string) (*Command, error) {
	cmd := &Command{}
	seen := make(map[string]bool)
	inPath := true

	for _, token := range strings.Fields(sig) {
		switch {
		case strings.HasPrefix(token, "<"), strings.HasPrefix(token, "["), strings.HasPrefix(token, "-"):
			inPath = false
		default:
			if !inPath {
				return nil, &SignatureError{Token: token, Reason: "command path words must come before arguments and flags"}
			}
			if !nameRe.MatchString(token) {
				return nil, &SignatureError{Token: token, Reason: "command path word must start with a letter and use only letters, digits, hyphens and underscores"}
			}
			cmd.Path = append(cmd.Path, token)
			continue
		}

		if err := cmd.parseToken(token, seen); err != nil {
			return nil, err
		}
	}

	return cmd, cmd.validateOrder()
}

// parseToken dispatches one non-path token.
func (c *Command) parseToken(token string, seen map[string]bool) error {
	switch {
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
		return c.parseArgument(token, token[1:len(token)-1], true, seen)
	case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
		body := token[1 : len(token)-1]
		if strings.HasPrefix(body, "-") {
			return c.parseFlag(token, body, false, seen)
		}
		return c.parseArgument(token, body, false, seen)
	case strings.HasPrefix(token, "-"):
		return c.parseFlag(token, token, true, seen)
	default:
		return &SignatureError{Token: token, Reason: "unrecognized token"}
	}
}

// parseArgument handles <name>, <name...>, [name] and [name...] bodies.
func (c *Command) parseArgument(token, body string, required bool, seen map[string]bool) error {
	variadic := strings.HasSuffix(body, "...")
	name := strings.TrimSuffix(body, "...")
	if !nameRe.MatchString(name) {
		return &SignatureError{Token: token, Reason: "argument name must start with a letter and use only letters, digits, hyphens and underscores"}
	}
	if seen[name] {
		return &SignatureError{Token: token, Reason: fmt.Sprintf("name %q declared twice", name)}
	}
	seen[name] = true
	c.Args = append(c.Args, Argument{Name: name, Required: required, Variadic: variadic})
	return nil
}

// parseFlag handles flag bodies: --name, -s|--name, --name=literal and
// --name=<type>, bracketed (optional) or bare (required).
func (c *Command) parseFlag(token, body string, required bool, seen map[string]bool) error {
	head, value, hasValue := strings.Cut(body, "=")

	var short, name string
	switch parts := strings.Split(head, "|"); len(parts) {
	case 1:
		name = strings.TrimPrefix(parts[0], "--")
		if !strings.HasPrefix(parts[0], "--") {
			return &SignatureError{Token: token, Reason: "a flag without a long form is not allowed; write --name or -x|--name"}
		}
	case 2:
		if len(parts[0]) != 2 || parts[0][0] != '-' || parts[0][1] == '-' {
			return &SignatureError{Token: token, Reason: "short alias must be a single dash and letter, like -v"}
		}
		if !strings.HasPrefix(parts[1], "--") {
			return &SignatureError{Token: token, Reason: "the long form must follow the short alias, like -v|--verbose"}
		}
		short = string(parts[0][1])
		name = strings.TrimPrefix(parts[1], "--")
	default:
		return &SignatureError{Token: token, Reason: "too many aliases; a flag takes at most one short and one long form"}
	}

	if !nameRe.MatchString(name) {
		return &SignatureError{Token: token, Reason: "flag name must start with a letter and use only letters, digits, hyphens and underscores"}
	}
	if seen[name] {
		return &SignatureError{Token: token, Reason: fmt.Sprintf("name %q declared twice", name)}
	}

	flag := Flag{Name: name, Short: short, Required: required}
	switch {
	case !hasValue:
		if required {
			return &SignatureError{Token: token, Reason: "a required flag must declare a value type, like --name=<string>; wrap boolean flags in brackets"}
		}
		flag.Type = FlagTypeBool
	case strings.HasPrefix(value, "<") && strings.HasSuffix(value, ">"):
		t, err := placeholderType(token, value[1:len(value)-1])
		if err != nil {
			return err
		}
		flag.Type = t
	default:
		if required {
			return &SignatureError{Token: token, Reason: "a required flag cannot carry a default; bracket it as optional or declare a type placeholder"}
		}
		flag.Type = inferType(value)
		flag.Default = value
	}

	seen[name] = true
	c.Flags = append(c.Flags, flag)
	return nil
}

// placeholderType maps a <type> placeholder to a FlagType.
func placeholderType(token, placeholder string) (FlagType, error) {
	switch FlagType(placeholder) {
	case FlagTypeString, FlagTypeBool, FlagTypeInt, FlagTypeFloat:
		return FlagType(placeholder), nil
	default:
		return "", &SignatureError{Token: token, Reason: fmt.Sprintf("unknown type placeholder %q (valid: string, bool, int, float)", placeholder)}
	}
}

// inferType derives a flag's type from its default literal.
func inferType(literal string) FlagType {
	switch {
	case literal == "true" || literal == "false":
		return FlagTypeBool
	case intRe.MatchString(literal):
		return FlagTypeInt
	case floatRe.MatchString(literal):
		return FlagTypeFloat
	default:
		return FlagTypeString
	}
}

// validateOrder enforces the positional-argument shape: required arguments
// before optional ones, variadic only in last position.
func (c *Command) validateOrder() error {
	sawOptional := false
	for i, arg := range c.Args {
		if arg.Variadic && i != len(c.Args)-1 {
			return &SignatureError{Token: arg.Name, Reason: "only the last positional argument may be variadic"}
		}
		if arg.Required && sawOptional {
			return &SignatureError{Token: arg.Name, Reason: "required arguments must come before optional ones"}
		}
		if !arg.Required {
			sawOptional = true
		}
	}
	return nil
}
