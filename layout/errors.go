package layout

// ErrorType classifies engine-reported problems
type ErrorType uint8

const (
	ErrorTextMeasurementFunctionNotProvided ErrorType = iota
	ErrorArenaCapacityExceeded
	ErrorElementsCapacityExceeded
	ErrorTextMeasurementCapacityExceeded
	ErrorDuplicateID
	ErrorPercentageOver1
	ErrorUnbalancedClose
	ErrorInternal
)

var errorTypeNames = [...]string{
	ErrorTextMeasurementFunctionNotProvided: "text measurement function not provided",
	ErrorArenaCapacityExceeded:              "arena capacity exceeded",
	ErrorElementsCapacityExceeded:           "elements capacity exceeded",
	ErrorTextMeasurementCapacityExceeded:    "text measurement capacity exceeded",
	ErrorDuplicateID:                        "duplicate ID",
	ErrorPercentageOver1:                    "percentage over 1",
	ErrorUnbalancedClose:                    "unbalanced element close",
	ErrorInternal:                           "internal error",
}

// String returns a readable name
func (t ErrorType) String() string {
	if int(t) < len(errorTypeNames) {
		return errorTypeNames[t]
	}
	return "unknown error"
}

// ErrorData is passed to the ErrorHandler
type ErrorData struct {
	Type ErrorType
	Text string
}

// Error implements error so handlers can wrap or return it
func (e ErrorData) Error() string {
	return e.Type.String() + ": " + e.Text
}

// ErrorHandler receives engine errors; the engine never panics on bad input
type ErrorHandler func(ErrorData)
