package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"moto-hud.klederson.com/internal/app"
)

// RenderStatusBar renders the loop telemetry and the roll history.
func RenderStatusBar(width int, t app.Telemetry, roll []float64) string {
	alert := StyleAlertOff.Render("[ OK ]")
	if t.Alert {
		alert = StyleAlertOn.Render("[ALERT]")
	}

	info := fmt.Sprintf(" %s  Roll: %+5.1fdeg  Temp: %4.1fC  Gauges: %d/%d  Dist: %2d/%2d  %s %s/%s  Frames: %d ",
		t.Mode, t.Angles.Roll, t.Celsius,
		t.Levels[0], t.Levels[1], t.Readings[0], t.Readings[1],
		t.Prefs.Scheme, t.Prefs.Temp, t.Prefs.Dist, t.Frames)
	if t.SensorErr != nil {
		info += StyleError.Render("sensor: "+t.SensorErr.Error()) + " "
	}

	content := alert + info
	spark := StyleSparkline.Render(Sparkline(roll, max(width-2-lipgloss.Width(content)-1, 0), -90, 90))
	return StyleStatusBar.Width(width).Render(content + pad(width-2, content, spark) + spark)
}
