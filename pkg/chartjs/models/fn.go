package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FnWithArgs is a scriptable option: a JavaScript function expression the
// page evaluates before handing the config to Chart.js.
type FnWithArgs struct {
	Args []string
	Body string
}

// NewFn builds a function expression from its body and argument names.
func NewFn(body string, args ...string) FnWithArgs {
	return FnWithArgs{Args: args, Body: body}
}

// IsZero reports whether no function body is set.
func (f FnWithArgs) IsZero() bool { return strings.TrimSpace(f.Body) == "" }

func (f FnWithArgs) String() string {
	return fmt.Sprintf("function(%s) { %s }", strings.Join(f.Args, ", "), f.Body)
}

// MarshalJSON emits the function source as a JSON string.
func (f FnWithArgs) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses a string of the form "function(a, b) { body }".
func (f *FnWithArgs) UnmarshalJSON(data []byte) error {
	var src string
	if err := json.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFunction, err)
	}
	fn, err := ParseFn(src)
	if err != nil {
		return err
	}
	*f = fn
	return nil
}

// ParseFn parses a function expression produced by FnWithArgs.String.
func ParseFn(src string) (FnWithArgs, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(src), "function")
	if !ok {
		return FnWithArgs{}, fmt.Errorf("%w: missing function keyword in %q", ErrMalformedFunction, src)
	}
	rest = strings.TrimSpace(rest)
	open, closeParen := strings.Index(rest, "("), strings.Index(rest, ")")
	if open != 0 || closeParen < 0 {
		return FnWithArgs{}, fmt.Errorf("%w: bad argument list in %q", ErrMalformedFunction, src)
	}
	var args []string
	for _, a := range strings.Split(rest[1:closeParen], ",") {
		if a = strings.TrimSpace(a); a != "" {
			args = append(args, a)
		}
	}
	body := strings.TrimSpace(rest[closeParen+1:])
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return FnWithArgs{}, fmt.Errorf("%w: missing body in %q", ErrMalformedFunction, src)
	}
	return FnWithArgs{
		Args: args,
		Body: strings.TrimSpace(body[1 : len(body)-1]),
	}, nil
}
