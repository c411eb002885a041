package interfacer

// Events passed to Router.Debug.

type routeEvent struct {
	App      string
	Category string
	NotFound bool `json:",omitempty"`
}

type subCommandEvent struct {
	Category string
	Token    string
	Matches  int
}

type exitEvent struct {
	Category   string
	SubCommand string
	Code       int
}
