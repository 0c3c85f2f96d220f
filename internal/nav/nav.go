package nav

// EventType identifies a UI event dispatched to the toggle. Events map onto
// handlers through an explicit registration table so the state machine can be
// driven directly, with no rendering surface behind it.
type EventType string

const (
	EventMenuOpen      EventType = "menu_open"
	EventCloseButton   EventType = "close_button"
	EventKeyDown       EventType = "key_down"
	EventLinkClick     EventType = "link_click"
	EventBackdropClick EventType = "backdrop_click"
	EventContentClick  EventType = "content_click"
)

const keyEscape = "Escape"

type Event struct {
	Type EventType
	Key  string // for EventKeyDown
	Href string // for EventLinkClick
}

// Variant is one rendering of the navigation (mobile panel or desktop bar).
// Both variants highlight the same active link, keyed by link target.
type Variant struct {
	Links  []string
	Active string
}

func (v *Variant) activate(href string) {
	for _, l := range v.Links {
		if l == href {
			v.Active = href
			return
		}
	}
}

// Toggle is the open/closed state machine over the mobile navigation panel.
// Opening locks page scrolling; closing restores it.
type Toggle struct {
	open         bool
	scrollLocked bool
	Mobile       Variant
	Desktop      Variant

	handlers map[EventType]func(*Toggle, Event)
}

// NewToggle starts closed, with the given link targets shared by both
// navigation variants.
func NewToggle(links ...string) *Toggle {
	t := &Toggle{
		Mobile:  Variant{Links: links},
		Desktop: Variant{Links: links},
	}
	t.handlers = map[EventType]func(*Toggle, Event){
		EventMenuOpen:      (*Toggle).handleMenuOpen,
		EventCloseButton:   (*Toggle).handleClose,
		EventKeyDown:       (*Toggle).handleKeyDown,
		EventLinkClick:     (*Toggle).handleLinkClick,
		EventBackdropClick: (*Toggle).handleClose,
		EventContentClick:  (*Toggle).handleContentClick,
	}
	return t
}

// Handle dispatches one event. Unregistered event types are no-ops.
func (t *Toggle) Handle(e Event) {
	if h, ok := t.handlers[e.Type]; ok {
		h(t, e)
	}
}

func (t *Toggle) IsOpen() bool {
	return t.open
}

func (t *Toggle) ScrollLocked() bool {
	return t.scrollLocked
}

func (t *Toggle) handleMenuOpen(Event) {
	t.open = true
	t.scrollLocked = true
}

func (t *Toggle) handleClose(Event) {
	t.open = false
	t.scrollLocked = false
}

func (t *Toggle) handleKeyDown(e Event) {
	if e.Key == keyEscape && t.open {
		t.handleClose(e)
	}
}

func (t *Toggle) handleLinkClick(e Event) {
	t.handleClose(e)
	t.Mobile.activate(e.Href)
	t.Desktop.activate(e.Href)
}

func (t *Toggle) handleContentClick(Event) {
	// Clicks inside the panel content leave the panel open.
}
