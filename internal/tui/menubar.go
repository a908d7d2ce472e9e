package tui

import (
	"fmt"

	"moto-hud.klederson.com/internal/config"
)

// RenderMenuBar renders the title and key hints.
func RenderMenuBar(width int, sweeping bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"←/→", "lean"},
		{"SPC", "sweep"},
		{"A/Z", "left dial"},
		{"K/M", "right dial"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleMenuLabel.Render("STEADY")
	if sweeping {
		status = StyleMenuKey.Render("SWEEPING")
	}

	left := StyleMenuKey.Render(title) + menu
	right := status + " "
	return StyleMenuBar.Width(width).Render(left + pad(width-2, left, right) + right)
}
