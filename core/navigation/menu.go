package navigation

// NavItem is an entry of the navigation bar or of the account menu.
type NavItem struct {
	Page  Page   `json:"page"`
	Label string `json:"label"`
}

// MainMenu returns the navigation bar entries, in display order.
func MainMenu() []NavItem {
	return []NavItem{
		{Page: PageDashboard, Label: "Home"},
		{Page: PageTutors, Label: "Tutors"},
		{Page: PageGroupClasses, Label: "Group Classes"},
		{Page: PageCalendar, Label: "Calendar"},
		{Page: PageRecordings, Label: "Recordings"},
		{Page: PageMessages, Label: "Messages"},
		{Page: PageWallet, Label: "Wallet"},
	}
}

// AccountMenu returns the account dropdown entries. Logging out navigates to the login page.
func AccountMenu() []NavItem {
	return []NavItem{
		{Page: PageSettings, Label: "Settings"},
		{Page: PageWallet, Label: "Wallet"},
		{Page: PageLogin, Label: "Logout"},
	}
}

// ShowNavBar reports whether the navigation bar is drawn on p.
func ShowNavBar(p Page) bool {
	return p != PageLogin
}
