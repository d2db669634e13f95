package navigation

// View is what the renderer draws for a page. The set of implementations is closed.
type View interface {
	Page() Page
	isView()
}

type (
	LoginView     struct{}
	DashboardView struct {
		// Fallback is set when an unknown page was resolved to the dashboard.
		Fallback Page `json:"fallback,omitempty"`
	}
	TutorsView       struct{}
	TutorProfileView struct {
		TutorID string `json:"tutor_id"`
	}
	BookingView struct {
		TutorID string `json:"tutor_id"`
	}
	CalendarView     struct{}
	MessagesView     struct{}
	WalletView       struct{}
	SettingsView     struct{}
	GroupClassesView struct{}
	RecordingsView   struct{}
)

func (LoginView) Page() Page        { return PageLogin }
func (DashboardView) Page() Page    { return PageDashboard }
func (TutorsView) Page() Page       { return PageTutors }
func (TutorProfileView) Page() Page { return PageTutorProfile }
func (BookingView) Page() Page      { return PageBooking }
func (CalendarView) Page() Page     { return PageCalendar }
func (MessagesView) Page() Page     { return PageMessages }
func (WalletView) Page() Page       { return PageWallet }
func (SettingsView) Page() Page     { return PageSettings }
func (GroupClassesView) Page() Page { return PageGroupClasses }
func (RecordingsView) Page() Page   { return PageRecordings }

func (LoginView) isView()        {}
func (DashboardView) isView()    {}
func (TutorsView) isView()       {}
func (TutorProfileView) isView() {}
func (BookingView) isView()      {}
func (CalendarView) isView()     {}
func (MessagesView) isView()     {}
func (WalletView) isView()       {}
func (SettingsView) isView()     {}
func (GroupClassesView) isView() {}
func (RecordingsView) isView()   {}

// Resolve maps a page and its data to the view to render. Unknown pages resolve to the dashboard.
func Resolve(page Page, data *Data) View {
	switch page {
	case PageLogin:
		return LoginView{}
	case PageDashboard:
		return DashboardView{}
	case PageTutors:
		return TutorsView{}
	case PageTutorProfile:
		return TutorProfileView{TutorID: tutorID(data)}
	case PageBooking:
		return BookingView{TutorID: tutorID(data)}
	case PageCalendar:
		return CalendarView{}
	case PageMessages:
		return MessagesView{}
	case PageWallet:
		return WalletView{}
	case PageSettings:
		return SettingsView{}
	case PageGroupClasses:
		return GroupClassesView{}
	case PageRecordings:
		return RecordingsView{}
	default:
		return DashboardView{Fallback: page}
	}
}

func tutorID(data *Data) string {
	if data == nil || data.TutorID == "" {
		return DefaultTutorID
	}
	return data.TutorID
}
