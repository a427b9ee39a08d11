package picker

import "fmt"

// EventKind identifies a user interaction with the date field or popup.
type EventKind int

const (
	EventOpen EventKind = iota
	EventPrev
	EventNext
	EventPickDay
	EventDismiss
)

// Event is routed through Handle, the single entry point renderers wire
// their input to.
type Event struct {
	Kind EventKind
	Day  int
}

// Handle applies ev to the picker.
func (p *Picker) Handle(ev Event) error {
	switch ev.Kind {
	case EventOpen:
		p.Open()
		return nil
	case EventPrev:
		return p.Navigate(Prev)
	case EventNext:
		return p.Navigate(Next)
	case EventPickDay:
		return p.SelectDay(ev.Day)
	case EventDismiss:
		p.Dismiss()
		return nil
	default:
		return fmt.Errorf("picker: unknown event %d", ev.Kind)
	}
}
