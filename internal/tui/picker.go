package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/javiermolinar/tafel/internal/station"
)

// directionItem is one selectable platform in the station picker.
type directionItem struct {
	dir station.Direction
}

func (i directionItem) Title() string {
	return fmt.Sprintf("%s  %s", i.dir.Line, i.dir.Station)
}

func (i directionItem) Description() string {
	return fmt.Sprintf("%s · Gleis %d", i.dir.Label(), i.dir.Platform)
}

func (i directionItem) FilterValue() string {
	return i.dir.Line + " " + i.dir.Station + " " + i.dir.Towards
}

// newPicker lists every direction of every station.
func newPicker(width, height int) list.Model {
	dirs := station.All()
	items := make([]list.Item, len(dirs))
	for i, d := range dirs {
		items[i] = directionItem{dir: d}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Station wählen"
	l.SetShowStatusBar(false)
	return l
}

// selectIndex moves the picker cursor onto sel when it is listed.
func selectIndex(l *list.Model, sel station.Selection) {
	for i, it := range l.Items() {
		d, ok := it.(directionItem)
		if ok && d.dir.Station == sel.Name && d.dir.RBL == sel.RBL && d.dir.Platform == sel.Platform {
			l.Select(i)
			return
		}
	}
}
