package natlog

/*
Runtime agreement check of printf templates and arguments for templates that
come from outside the program (go vet never sees them).

The template is walked the way fmt.Appendf walks it: flags, explicit
argument indexes, '*' width and precision, the verb. Every verb is checked
against the kind of the argument it consumes, composite values element by
element, and String/Error methods fmt would call are tried for panics. Only
the template and argument types are inspected, never the rendered text, so
arguments containing "%!" sequences of their own are fine.
*/

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Verbs accepted per operand kind (besides %v).
const (
	_VERBS_INT     = "bcdoOqxXU"
	_VERBS_FLOAT   = "beEfFgGxX"
	_VERBS_STRING  = "sqxX"
	_VERBS_POINTER = "bodxX"
	_VERBS_METHODS = "vsqxX" // verbs fmt prints with String() or Error()

	_MAX_STAR_ARG = 1e6 // fmt rejects larger '*' width and precision
)

type templateScan struct {
	format    string
	args      []any
	pos       int
	argNum    int
	reordered bool
}

// checkTemplate reports the first spot where fmt would print one of its
// %!verb(...) error markers for format and args, nil if there is none.
func checkTemplate(format string, args []any) error {
	s := &templateScan{format: format, args: args}
	return s.run()
}

func (s *templateScan) run() error {
	end := len(s.format)
	for s.pos < end {
		if i := strings.IndexByte(s.format[s.pos:], '%'); i >= 0 {
			s.pos += i + 1
		} else {
			break
		}
		for s.pos < end && strings.IndexByte("#0+- ", s.format[s.pos]) >= 0 {
			s.pos++
		}
		afterIndex, err := s.argIndex()
		if err != nil {
			return err
		}
		// width
		if s.pos < end && s.format[s.pos] == '*' {
			s.pos++
			if err := s.starArg("width", true); err != nil {
				return err
			}
			afterIndex = false
		} else if s.skipDigits() && afterIndex {
			return fmt.Errorf("bad argument index before width at %d", s.pos)
		}
		// precision
		if s.pos+1 < end && s.format[s.pos] == '.' {
			s.pos++
			if afterIndex {
				return fmt.Errorf("bad argument index before precision at %d", s.pos)
			}
			if afterIndex, err = s.argIndex(); err != nil {
				return err
			}
			if s.pos < end && s.format[s.pos] == '*' {
				s.pos++
				if err := s.starArg("precision", false); err != nil {
					return err
				}
				afterIndex = false
			} else {
				s.skipDigits()
			}
		}
		if !afterIndex {
			if _, err := s.argIndex(); err != nil {
				return err
			}
		}
		if s.pos >= end {
			return errors.New("template ends in the middle of a verb")
		}
		verb, size := utf8.DecodeRuneInString(s.format[s.pos:])
		s.pos += size
		if verb == '%' {
			continue
		}
		if s.argNum >= len(s.args) {
			return fmt.Errorf("%%%c has no argument", verb)
		}
		if err := checkArg(verb, s.args[s.argNum]); err != nil {
			return err
		}
		s.argNum++
	}
	if !s.reordered && s.argNum < len(s.args) {
		return fmt.Errorf("%d extra argument(s)", len(s.args)-s.argNum)
	}
	return nil
}

// Consumes an explicit "[n]" argument index if there is one.
func (s *templateScan) argIndex() (found bool, err error) {
	if s.pos >= len(s.format) || s.format[s.pos] != '[' {
		return false, nil
	}
	s.reordered = true
	closing := strings.IndexByte(s.format[s.pos:], ']')
	if closing < 0 {
		return false, fmt.Errorf("unclosed argument index at %d", s.pos)
	}
	digits := s.format[s.pos+1 : s.pos+closing]
	n := 0
	for _, c := range []byte(digits) {
		if c < '0' || c > '9' || n > len(s.args) {
			n = -1
			break
		}
		n = n*10 + int(c-'0')
	}
	if digits == "" || n < 1 || n > len(s.args) {
		return false, fmt.Errorf("bad argument index [%s]", digits)
	}
	s.pos += closing + 1
	s.argNum = n - 1
	return true, nil
}

// Consumes a '*' argument, which has to be an integer fmt accepts.
func (s *templateScan) starArg(what string, negativeOK bool) error {
	if s.argNum >= len(s.args) {
		return fmt.Errorf("missing %s argument", what)
	}
	arg := s.args[s.argNum]
	s.argNum++
	var n int64
	switch v := reflect.ValueOf(arg); v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > _MAX_STAR_ARG {
			return fmt.Errorf("%s argument %d is too large", what, v.Uint())
		}
		n = int64(v.Uint())
	default:
		return fmt.Errorf("%s argument of type %T is not an integer", what, arg)
	}
	if n > _MAX_STAR_ARG || n < -_MAX_STAR_ARG || (n < 0 && !negativeOK) {
		return fmt.Errorf("bad %s argument %d", what, n)
	}
	return nil
}

func (s *templateScan) skipDigits() bool {
	start := s.pos
	for s.pos < len(s.format) && s.format[s.pos] >= '0' && s.format[s.pos] <= '9' {
		s.pos++
	}
	return s.pos > start
}

/////////////////////////////////////////////////////////////////////////////////////////

func checkArg(verb rune, arg any) error {
	if !verbFits(verb, arg, 0) {
		return fmt.Errorf("%%%c doesn't fit an argument of type %T", verb, arg)
	}
	return methodPanic(verb, arg)
}

// True if fmt prints arg with verb without a bad verb marker. depth follows
// fmt's own recursion into composite values.
func verbFits(verb rune, arg any, depth int) bool {
	switch {
	case verb == 'v':
		return true
	case verb == 'w':
		return false // only fmt.Errorf knows %w
	}
	if depth == 0 {
		switch {
		case verb == 'T':
			return true
		case arg == nil:
			return false
		case verb == 'p':
			return isPointerKind(reflect.ValueOf(arg).Kind())
		}
	}
	if v, ok := arg.(reflect.Value); ok {
		return valueFits(verb, v, depth)
	}
	if _, ok := arg.(fmt.Formatter); ok {
		return true
	}
	if strings.ContainsRune(_VERBS_STRING, verb) {
		switch arg.(type) {
		case error, fmt.Stringer:
			return true
		}
	}
	return valueFits(verb, reflect.ValueOf(arg), depth)
}

// Nested values go through methods again when fmt can reach them.
func elemFits(verb rune, v reflect.Value, depth int) bool {
	if v.IsValid() && v.CanInterface() {
		return verbFits(verb, v.Interface(), depth)
	}
	return valueFits(verb, v, depth)
}

func valueFits(verb rune, v reflect.Value, depth int) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return depth > 0 // nested nils print as <nil>
	case reflect.Bool:
		return verb == 't'
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strings.ContainsRune(_VERBS_INT, verb)
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return strings.ContainsRune(_VERBS_FLOAT, verb)
	case reflect.String:
		return strings.ContainsRune(_VERBS_STRING, verb)
	case reflect.Map:
		for iter := v.MapRange(); iter.Next(); {
			if !elemFits(verb, iter.Key(), depth+1) || !elemFits(verb, iter.Value(), depth+1) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range v.NumField() {
			f := v.Field(i)
			if f.Kind() == reflect.Interface && !f.IsNil() {
				f = f.Elem()
			}
			if !elemFits(verb, f, depth+1) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return elemFits(verb, v.Elem(), depth+1)
	case reflect.Array, reflect.Slice:
		if strings.ContainsRune(_VERBS_STRING, verb) && v.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := range v.Len() {
			if !elemFits(verb, v.Index(i), depth+1) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if depth == 0 && !v.IsNil() {
			switch v.Elem().Kind() {
			case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map:
				return elemFits(verb, v.Elem(), depth+1)
			}
		}
		return strings.ContainsRune(_VERBS_POINTER, verb)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return strings.ContainsRune(_VERBS_POINTER, verb)
	}
	return false
}

func isPointerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// Calls the Error or String method fmt is going to call for verb and reports
// a panic in it. Nil pointer receivers are skipped, fmt prints them as <nil>.
func methodPanic(verb rune, arg any) (err error) {
	if !strings.ContainsRune(_VERBS_METHODS, verb) {
		return nil
	}
	var call func() string
	switch v := arg.(type) {
	case fmt.Formatter:
		return nil
	case error:
		call = v.Error
	case fmt.Stringer:
		call = v.String
	default:
		return nil
	}
	if v := reflect.ValueOf(arg); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%%%c: method of %T panicked%s", verb, arg, panicDesc(r))
		}
	}()
	call()
	return nil
}
