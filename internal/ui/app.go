// Package ui implements the desktop front end of the color-variants viewer.
package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/catalog"
	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/export"
	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/logging"
	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/trendyol"
)

const (
	appTitle       = "Trendyol Color Variants Viewer"
	requestTimeout = 40 * time.Second
)

var tableHeaders = []string{
	"Group", "Product ID", "Barcode", "Product Name",
	"Price", "Currency", "Rating", "Reviews", "URL",
}

var columnWidths = []float32{110, 110, 140, 360, 100, 90, 90, 100, 340}

// Run initialises and displays the desktop application.
func Run() {
	application := app.NewWithID("trendyol-color-variants-viewer")
	application.Settings().SetTheme(theme.DarkTheme())

	service := trendyol.NewService(requestTimeout, trendyol.ConfigFor("TR"))
	if lifecycle := application.Lifecycle(); lifecycle != nil {
		lifecycle.SetOnStopped(service.Close)
	}

	window := application.NewWindow(appTitle)
	window.Resize(fyne.NewSize(1200, 700))
	window.SetMaster()

	window.SetContent(buildMainView(window, service))
	window.ShowAndRun()
}

// viewState is the single owned application state. Every field is read and
// written on the foreground thread only; worker goroutines hand their
// result back through queueOnMain.
type viewState struct {
	catalog  *catalog.Collection
	query    string
	visible  []trendyol.Product
	fetching bool
}

func (s *viewState) refreshVisible() {
	s.visible = slices.Collect(s.catalog.Matches(s.query))
}

func buildMainView(window fyne.Window, service *trendyol.Service) fyne.CanvasObject {
	log := logging.Logger()
	state := &viewState{catalog: catalog.New()}

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("Paste a Trendyol color-variants URL…")

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Type to filter by name, product id, or barcode…")

	countLabel := widget.NewLabel("Total: 0")

	statusBinding := binding.NewString()
	safeSet(statusBinding, "Ready.")
	statusLabel := widget.NewLabelWithData(statusBinding)

	progress := widget.NewProgressBar()

	table := buildProductTable(state)

	updateCounter := func() {
		total := state.catalog.Len()
		if state.query != "" {
			countLabel.SetText(fmt.Sprintf("Showing %d of %d", len(state.visible), total))
			return
		}
		countLabel.SetText(fmt.Sprintf("Total: %d", total))
	}

	refresh := func() {
		state.refreshVisible()
		table.Refresh()
		updateCounter()
	}

	resetProgressSoon := func() {
		time.AfterFunc(800*time.Millisecond, func() {
			queueOnMain(func() { progress.SetValue(0) })
		})
	}

	var fetchButton *widget.Button
	fetchButton = widget.NewButtonWithIcon("Fetch & Add", theme.DownloadIcon(), func() {
		endpoint := strings.TrimSpace(urlEntry.Text)
		if endpoint == "" {
			dialog.ShowInformation("Fetch", "Please paste a Trendyol color-variants URL.", window)
			return
		}
		if state.fetching {
			safeSet(statusBinding, "A fetch is already running…")
			return
		}

		state.fetching = true
		fetchButton.Disable()
		progress.SetValue(0.2)
		safeSet(statusBinding, "Fetching…")

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		go func() {
			defer cancel()

			products, err := service.FetchVariants(ctx, endpoint)

			queueOnMain(func() {
				state.fetching = false
				fetchButton.Enable()

				if err != nil {
					log.Error("fetch failed", "url", endpoint, "err", err)
					progress.SetValue(0)
					safeSet(statusBinding, statusForError(err))
					dialog.ShowError(fmt.Errorf("fetch error: %w", err), window)
					return
				}

				progress.SetValue(0.7)
				if len(products) == 0 {
					safeSet(statusBinding, "No data found or payload format is different.")
					resetProgressSoon()
					return
				}

				report := state.catalog.Merge(products)
				refresh()
				progress.SetValue(1)
				log.Info("merge cycle complete", "url", endpoint, "added", report.Added, "skipped", report.Skipped)
				safeSet(statusBinding, fmt.Sprintf("Done (200 OK): %d added, %d duplicate(s) skipped.", report.Added, report.Skipped))
				resetProgressSoon()
			})
		}()
	})

	exportButton := widget.NewButtonWithIcon("Export to Excel", theme.DocumentSaveIcon(), func() {
		products := state.catalog.Items()
		if len(products) == 0 {
			dialog.ShowInformation("Export", "There is no data to export.", window)
			return
		}
		go func() {
			written, err := export.WriteXLSX(export.DefaultFilename, products)
			queueOnMain(func() {
				if err != nil {
					log.Error("export failed", "path", export.DefaultFilename, "err", err)
					dialog.ShowError(fmt.Errorf("failed to save Excel: %w", err), window)
					return
				}
				safeSet(statusBinding, fmt.Sprintf("Excel saved: %s", export.DefaultFilename))
				dialog.ShowInformation("Export", fmt.Sprintf("Saved %d product(s) to %s.", written, export.DefaultFilename), window)
			})
		}()
	})

	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Confirm", "Do you want to clear the list?", func(ok bool) {
			if !ok {
				return
			}
			state.catalog.Clear()
			refresh()
			progress.SetValue(0)
			safeSet(statusBinding, "Cleared.")
		}, window)
	})
	clearButton.Importance = widget.DangerImportance

	searchEntry.OnChanged = func(value string) {
		state.query = value
		refresh()
	}
	urlEntry.OnSubmitted = func(string) { fetchButton.OnTapped() }

	topBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(fetchButton, exportButton, clearButton),
		urlEntry,
	)
	searchBar := container.NewBorder(nil, nil, widget.NewLabel("Search:"), countLabel, searchEntry)
	bottomBar := container.NewBorder(nil, nil, nil, statusLabel, progress)

	return container.NewBorder(
		container.NewVBox(container.NewPadded(topBar), container.NewPadded(searchBar)),
		container.NewPadded(bottomBar),
		nil, nil,
		container.NewPadded(table),
	)
}

// buildProductTable renders the filtered view with a bold header row on top.
func buildProductTable(state *viewState) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(state.visible) + 1, len(tableHeaders)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Alignment = fyne.TextAlignLeading
			label.Wrapping = fyne.TextWrapOff
			return label
		},
		func(id widget.TableCellID, object fyne.CanvasObject) {
			label, _ := object.(*widget.Label)
			if label == nil {
				return
			}

			label.Alignment = fyne.TextAlignLeading
			label.TextStyle = fyne.TextStyle{}

			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(tableHeaders[id.Col])
				return
			}
			if id.Row-1 >= len(state.visible) {
				label.SetText("")
				return
			}

			p := state.visible[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(p.GroupID)
			case 1:
				label.SetText(p.ProductID)
			case 2:
				label.SetText(p.Barcode)
			case 3:
				label.SetText(p.Name)
			case 4:
				label.Alignment = fyne.TextAlignTrailing
				label.SetText(p.PriceText)
			case 5:
				label.Alignment = fyne.TextAlignCenter
				label.SetText(p.Currency)
			case 6:
				label.Alignment = fyne.TextAlignCenter
				label.SetText(strconv.FormatFloat(p.Rating, 'f', 1, 64))
			case 7:
				label.Alignment = fyne.TextAlignCenter
				label.SetText(strconv.Itoa(p.ReviewCount))
			case 8:
				label.SetText(p.URL)
			}
		},
	)
	for col, width := range columnWidths {
		table.SetColumnWidth(col, width)
	}
	return table
}

// statusForError maps a fetch failure to the one-line status shown under
// the table; the dialog carries the full error.
func statusForError(err error) string {
	var httpErr *trendyol.HTTPError
	var netErr *trendyol.NetworkError
	var parseErr *trendyol.ParseError
	switch {
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP %d from Trendyol.", httpErr.StatusCode)
	case errors.As(err, &netErr):
		return "Network error."
	case errors.As(err, &parseErr):
		return "Unexpected payload."
	case errors.Is(err, trendyol.ErrServiceClosed):
		return "Service closed."
	default:
		return "Error."
	}
}

func queueOnMain(fn func()) {
	if fn == nil {
		return
	}
	fyne.Do(fn)
}

func safeSet(target binding.String, value string) {
	if err := target.Set(value); err != nil {
		fyne.LogError("failed to update binding", err)
	}
}
