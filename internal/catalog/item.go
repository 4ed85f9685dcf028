package catalog

// Item is a single launchable target discovered by a scan or declared
// in the user configuration.
type Item struct {
	Name     string // display name; match target and sort key
	Path     string // target path or command; unique identity within one catalog
	Icon     string // icon reference, presentation only; never inspected by ranking
	Terminal bool   // run inside a terminal emulator instead of detaching directly
}
