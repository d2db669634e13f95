package navigation

// Page identifies a top-level view.
type Page string

// Pages
const (
	PageLogin        Page = "login"
	PageDashboard    Page = "dashboard"
	PageTutors       Page = "tutors"
	PageTutorProfile Page = "tutor-profile"
	PageBooking      Page = "booking"
	PageCalendar     Page = "calendar"
	PageMessages     Page = "messages"
	PageWallet       Page = "wallet"
	PageSettings     Page = "settings"
	PageGroupClasses Page = "group-classes"
	PageRecordings   Page = "recordings"
)

// DefaultTutorID is used by the tutor pages when no tutor was passed along.
const DefaultTutorID = "1"

var pages = []Page{
	PageLogin, PageDashboard, PageTutors, PageTutorProfile, PageBooking, PageCalendar,
	PageMessages, PageWallet, PageSettings, PageGroupClasses, PageRecordings,
}

// Pages returns the closed set of known pages.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Known reports whether p is one of the known pages.
func (p Page) Known() bool {
	for _, known := range pages {
		if p == known {
			return true
		}
	}
	return false
}

// Data is the payload handed to the target page.
type Data struct {
	TutorID string `json:"tutor_id,omitempty"`
}

// State is the navigation state of one UI session.
type State struct {
	Current  Page  `json:"current_page"`
	Previous Page  `json:"previous_page"`
	Data     *Data `json:"page_data,omitempty"`
}

// New returns the state every UI session starts with.
func New() State {
	return State{Current: PageLogin, Previous: PageDashboard}
}

// Navigate moves to target, remembering the current page as the one Back returns to.
// A non-nil data replaces the page data; a nil one keeps it.
// Unknown targets are accepted, they resolve to the dashboard.
func (s State) Navigate(target Page, data *Data) State {
	next := State{Current: target, Previous: s.Current, Data: s.Data}
	if data != nil {
		d := *data
		next.Data = &d
	}
	return next
}

// Back returns to the previous page. Only one level of history is kept:
// calling Back twice lands on the same page.
func (s State) Back() State {
	return State{Current: s.Previous, Previous: s.Previous, Data: s.Data}
}

// Logout is a plain navigation to the login page.
func (s State) Logout() State {
	return s.Navigate(PageLogin, nil)
}

// View resolves the current page.
func (s State) View() View {
	return Resolve(s.Current, s.Data)
}
