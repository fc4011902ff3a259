// Package tui implements the interactive TUI for taskfold.
package tui

import (
	"fmt"
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/session"
	"github.com/taskfold/taskfold/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI over the data directory dir.
func Run(dir string) error {
	sess, err := session.Load(dir)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyTheme(settings.Display.Theme)

	ref := &programRef{}
	model := NewModel(dir, sess, settings, ref)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	// Reload when another process edits the journal, snapshot or settings.
	w, err := watcher.New(dir)
	if err != nil {
		log.Printf("Warning: failed to create watcher: %v", err)
	} else if err := w.Start(); err != nil {
		log.Printf("Warning: failed to watch %s: %v", dir, err)
	} else {
		defer w.Stop()
		go forwardEvents(w.Events(), ref)
	}
	if settingsDir, err := config.GlobalDir(); err == nil && settingsDir != dir {
		if sw, err := watcher.New(settingsDir); err == nil && sw.Start() == nil {
			defer sw.Stop()
			go forwardEvents(sw.Events(), ref)
		}
	}

	_, err = p.Run()
	ref.Clear()
	return err
}

func forwardEvents(evs <-chan watcher.Event, ref *programRef) {
	for e := range evs {
		ref.Send(FileChangedMsg{Event: e})
	}
}
