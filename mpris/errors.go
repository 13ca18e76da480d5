package mpris

// ServiceUnknownError indicates that the target player's bus name has no
// current owner, usually because the player process is not running. It is
// raised both at connection time (name-owner lookup) and at call time.
type ServiceUnknownError struct {
	BusName string
}

func (e *ServiceUnknownError) Error() string {
	return "player not running: no owner for " + e.BusName
}

// AbsentOptionalPropertyError indicates that a property write targeted an
// optional property the player does not implement. Callers can treat it as
// "feature unsupported" rather than a failed call.
type AbsentOptionalPropertyError struct {
	Path   string
	Member string
}

func (e *AbsentOptionalPropertyError) Error() string {
	return "accessed absent optional property: '" + e.Path + "' '" + e.Member + "'"
}

// TypeCastError indicates that a wire value did not have the runtime shape
// the decoder expected. Value carries the variant's debug rendering; it is
// purely diagnostic and never parsed.
type TypeCastError struct {
	Value  string
	Target string
}

func (e *TypeCastError) Error() string {
	return "cannot cast " + e.Value + " to " + e.Target
}

// TypeBuildError indicates that a textual value did not match any known tag
// of the target type.
type TypeBuildError struct {
	Target string
	Input  string
}

func (e *TypeBuildError) Error() string {
	return "cannot build " + e.Target + " from \"" + e.Input + "\""
}
