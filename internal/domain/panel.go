package domain

import "strings"

// Panel identifies a third-party ordering API.
type Panel string

const (
	PanelMTP Panel = "mtp"
	PanelJAP Panel = "jap"
)

// Panels lists every known panel in display order.
var Panels = []Panel{PanelMTP, PanelJAP}

func ParsePanel(s string) (Panel, bool) {
	p := Panel(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PanelMTP, PanelJAP:
		return p, true
	}
	return "", false
}

// Name is the human readable vendor name.
func (p Panel) Name() string {
	switch p {
	case PanelMTP:
		return "MoreThanPanel"
	case PanelJAP:
		return "JustAnotherPanel"
	}
	return string(p)
}

// Label is the short provider label shown in reports.
func (p Panel) Label() string {
	return strings.ToUpper(string(p))
}
