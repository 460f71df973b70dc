package wizard

// Screen is a render target. Each screen corresponds to one wizard state.
type Screen int

const (
	Unknown Screen = iota
	Top
	Input
	InputDetail
	Personal
	Confirm
	Complete
)

func getScreenTemplates() map[Screen]string {
	return map[Screen]string{
		Unknown:     "error",
		Top:         "top",
		Input:       "input-easy",
		InputDetail: "input-detail",
		Personal:    "personal",
		Confirm:     "confirm",
		Complete:    "complete",
	}
}

// Template returns the template name rendered for the screen.
func (s Screen) Template() string {
	if name, ok := getScreenTemplates()[s]; ok {
		return name
	}
	return "error"
}

func (s Screen) String() string {
	return s.Template()
}

// ShowsRegions reports whether the screen renders a prefecture selector.
func (s Screen) ShowsRegions() bool {
	switch s { //nolint:exhaustive // only region screens listed
	case Input, InputDetail, Personal, Confirm:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves the screen.
func (s Screen) IsTerminal() bool {
	return s == Complete
}

// Endpoint is the POST target a screen submits to.
type Endpoint string

const (
	EndpointSubmit   Endpoint = "submit"
	EndpointPersonal Endpoint = "personal"
	EndpointOrder    Endpoint = "order"
)

// Origin returns the screen whose form posts to the endpoint. It is the
// screen redisplayed when a submission cannot be processed.
func (e Endpoint) Origin() Screen {
	switch e {
	case EndpointSubmit:
		return Input
	case EndpointPersonal:
		return Personal
	case EndpointOrder:
		return Confirm
	default:
		return Unknown
	}
}

// ParseEndpoint maps a path segment to an Endpoint.
func ParseEndpoint(s string) (Endpoint, bool) {
	switch e := Endpoint(s); e {
	case EndpointSubmit, EndpointPersonal, EndpointOrder:
		return e, true
	default:
		return "", false
	}
}
