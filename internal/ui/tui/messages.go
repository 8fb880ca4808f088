package tui

type iterationsLoadedMsg struct {
	names []string
	err   error
}

type detailLoadedMsg struct {
	name   string
	detail string
	err    error
}
