package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, PageLogin, s.Current)
	assert.Equal(t, PageDashboard, s.Previous)
	assert.Nil(t, s.Data)
	assert.Equal(t, LoginView{}, s.View())
}

func TestState_Navigate(t *testing.T) {
	s := New().Navigate(PageDashboard, nil)
	assert.Equal(t, State{Current: PageDashboard, Previous: PageLogin}, s)

	s = s.Navigate(PageTutorProfile, &Data{TutorID: "3"})
	assert.Equal(t, PageTutorProfile, s.Current)
	assert.Equal(t, PageDashboard, s.Previous)
	assert.Equal(t, &Data{TutorID: "3"}, s.Data)

	// nil data keeps the payload
	s = s.Navigate(PageBooking, nil)
	assert.Equal(t, &Data{TutorID: "3"}, s.Data)
	assert.Equal(t, BookingView{TutorID: "3"}, s.View())

	// data replaces, never merges
	s = s.Navigate(PageTutorProfile, &Data{})
	assert.Equal(t, &Data{}, s.Data)
	assert.Equal(t, TutorProfileView{TutorID: DefaultTutorID}, s.View())

	// unknown targets are accepted
	s = s.Navigate(Page("lol"), nil)
	assert.Equal(t, Page("lol"), s.Current)
	assert.Equal(t, DashboardView{Fallback: "lol"}, s.View())
}

func TestState_Navigate_isolatesData(t *testing.T) {
	data := &Data{TutorID: "2"}
	s := New().Navigate(PageTutorProfile, data)
	data.TutorID = "5"
	assert.Equal(t, "2", s.Data.TutorID)
}

func TestState_Back(t *testing.T) {
	for _, from := range Pages() {
		for _, to := range Pages() {
			s := New().Navigate(from, nil)
			back := s.Navigate(to, nil).Back()
			assert.Equal(t, from, back.Current, "%s -> %s -> back", from, to)
		}
	}

	s := New().Navigate(PageDashboard, nil).Navigate(PageTutors, nil).Navigate(PageTutorProfile, &Data{TutorID: "4"})
	once := s.Back()
	twice := once.Back()
	assert.Equal(t, PageTutors, once.Current)
	assert.Equal(t, once, twice)
}

func TestState_Logout(t *testing.T) {
	s := New().Navigate(PageWallet, nil).Logout()
	assert.Equal(t, PageLogin, s.Current)
	assert.Equal(t, PageWallet, s.Previous)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		page Page
		data *Data
		want View
	}{
		{name: "login", page: PageLogin, want: LoginView{}},
		{name: "dashboard", page: PageDashboard, want: DashboardView{}},
		{name: "tutors", page: PageTutors, want: TutorsView{}},
		{name: "tutor profile", page: PageTutorProfile, data: &Data{TutorID: "6"}, want: TutorProfileView{TutorID: "6"}},
		{name: "tutor profile (default)", page: PageTutorProfile, want: TutorProfileView{TutorID: "1"}},
		{name: "booking", page: PageBooking, data: &Data{TutorID: "2"}, want: BookingView{TutorID: "2"}},
		{name: "booking (default)", page: PageBooking, data: &Data{}, want: BookingView{TutorID: "1"}},
		{name: "calendar", page: PageCalendar, want: CalendarView{}},
		{name: "messages", page: PageMessages, want: MessagesView{}},
		{name: "wallet", page: PageWallet, want: WalletView{}},
		{name: "settings", page: PageSettings, want: SettingsView{}},
		{name: "group classes", page: PageGroupClasses, want: GroupClassesView{}},
		{name: "recordings", page: PageRecordings, want: RecordingsView{}},
		{name: "unknown", page: "admin", want: DashboardView{Fallback: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.page, tt.data)
			assert.Equal(t, tt.want, got)
			if tt.page.Known() {
				assert.Equal(t, tt.page, got.Page())
			} else {
				assert.Equal(t, PageDashboard, got.Page())
			}
		})
	}
}

func TestMenus(t *testing.T) {
	for _, item := range append(MainMenu(), AccountMenu()...) {
		assert.True(t, item.Page.Known(), item.Label)
	}
	assert.False(t, ShowNavBar(PageLogin))
	assert.True(t, ShowNavBar(PageDashboard))
}
