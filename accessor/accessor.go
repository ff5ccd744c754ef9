// Package accessor defines the capability references attached to resolved
// property steps: how generated code reads a property and how it checks
// that the property is present before reading.
//
// The naming core carries these values around without interpreting them;
// only the code-emission layer renders them.
package accessor

// ReadAccessor renders the Go expression that reads one property from a
// receiver expression.
type ReadAccessor interface {
	ReadExpr(receiver string) string
}

// PresenceChecker renders the Go expression that reports whether one
// property is present on a receiver expression.
type PresenceChecker interface {
	PresenceExpr(receiver string) string
}

// FieldRead reads an exported struct field.
type FieldRead struct {
	Field string
}

func (f FieldRead) ReadExpr(receiver string) string {
	return receiver + "." + f.Field
}

// MethodRead reads a property through a niladic getter method.
type MethodRead struct {
	Method string
}

func (m MethodRead) ReadExpr(receiver string) string {
	return receiver + "." + m.Method + "()"
}

// MethodPresence checks presence through a niladic bool method, like the
// Has methods on generated protobuf types.
type MethodPresence struct {
	Method string
}

func (m MethodPresence) PresenceExpr(receiver string) string {
	return receiver + "." + m.Method + "()"
}

// NonNilPresence checks presence by comparing a pointer field against nil.
type NonNilPresence struct {
	Field string
}

func (p NonNilPresence) PresenceExpr(receiver string) string {
	return receiver + "." + p.Field + " != nil"
}
