package models

const (
	SideEffectNotification = "notification"
	SideEffectImageDelete  = "image_delete"
)

// SideEffect records the outcome of a best-effort action that never fails the call it belongs to.
type SideEffect struct {
	Name string
	Err  error
}

func (s SideEffect) Failed() bool {
	return s.Err != nil
}

// FailedSideEffects returns the names of the effects that did not succeed.
func FailedSideEffects(effects []SideEffect) []string {
	var names []string
	for _, e := range effects {
		if e.Failed() {
			names = append(names, e.Name)
		}
	}
	return names
}
