package site

import "strings"

type (
	Link struct {
		Label string
		Path  string
	}

	NavItem struct {
		Link
		Active bool
	}
)

var NavLinks = []Link{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Academics", Path: "/academics"},
	{Label: "Gallery", Path: "/gallery"},
	{Label: "Contact", Path: "/contact"},
}

// Navigation returns the navbar links with the one matching currentPath marked active.
// "/" only matches itself; other links also match their sub-paths.
func Navigation(currentPath string) []NavItem {
	items := make([]NavItem, 0, len(NavLinks))
	for _, l := range NavLinks {
		items = append(items, NavItem{Link: l, Active: isActive(l.Path, currentPath)})
	}
	return items
}

func isActive(linkPath, currentPath string) bool {
	if currentPath == "" {
		currentPath = "/"
	}
	if linkPath == "/" {
		return currentPath == "/"
	}
	return currentPath == linkPath || strings.HasPrefix(currentPath, linkPath+"/")
}
