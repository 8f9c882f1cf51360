package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/clock"
	"pomodoro/internal/core/engine"
	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/history"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/settings"
	"pomodoro/internal/ui/splash"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const (
	appName        = "Pomodoro"
	splashDuration = 2500 * time.Millisecond
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.timer")
	fyneApp.SetIcon(resources.MustAppIcon())

	config, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	var store engine.Store
	statsPath, err := storage.DefaultStatsPath(appName)
	if err != nil {
		log.Printf("resolve statistics path: %v (statistics will not persist)", err)
	} else {
		store = storage.NewJSONStore(statsPath)
	}

	sessionEngine := engine.New(config, store)
	tickDriver := clock.New(sessionEngine, time.Second)

	shutdown := func() {
		tickDriver.Close()
		if err := sessionEngine.Flush(); err != nil {
			log.Printf("flush statistics: %v", err)
		}
	}

	settingsWindow := settings.New(fyneApp, config, func(updated model.Config) error {
		if err := sessionEngine.Reconfigure(updated); err != nil {
			return err
		}
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		return nil
	})

	mainWindow := mainwindow.New(fyneApp, mainwindow.Callbacks{
		OnStartStop: func() {
			if sessionEngine.Snapshot().Session.RunState == model.RunRunning {
				sessionEngine.Stop()
			} else {
				sessionEngine.Start()
			}
		},
		OnPause: func() {
			if sessionEngine.Snapshot().Session.RunState == model.RunPaused {
				sessionEngine.Start()
			} else {
				sessionEngine.Pause()
			}
		},
		OnReset: func() {
			sessionEngine.ResetAll()
		},
		OnSettings: func() {
			settingsWindow.UpdateConfig(sessionEngine.Snapshot().Config)
			settingsWindow.Show()
		},
		OnHistory: func() {
			history.New(fyneApp, sessionEngine.Snapshot().Statistics).Show()
		},
		OnClosed: shutdown,
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimer: func() {
				mainWindow.Show()
			},
			OnStartPause: func() {
				if sessionEngine.Snapshot().Session.RunState == model.RunRunning {
					sessionEngine.Pause()
				} else {
					sessionEngine.Start()
				}
			},
			OnReset: func() {
				sessionEngine.ResetAll()
			},
			OnQuit: func() {
				shutdown()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustAppIcon())
	}

	var notifyMu sync.Mutex
	lastWork, lastBreaks := 0, 0
	unsubscribe := sessionEngine.Subscribe(func(snapshot model.Snapshot) {
		session := snapshot.Session

		notifyMu.Lock()
		finishedWork := session.CompletedWorkSessions > lastWork
		finishedBreak := session.CompletedBreakSessions > lastBreaks
		lastWork = session.CompletedWorkSessions
		lastBreaks = session.CompletedBreakSessions
		notifyMu.Unlock()

		if finishedWork {
			fyneApp.SendNotification(fyne.NewNotification("Break Time!", "Great work! Time for a break."))
		}
		if finishedBreak {
			fyneApp.SendNotification(fyne.NewNotification("Break Complete!", "Ready to get back to work?"))
		}

		fyne.Do(func() {
			mainWindow.Render(snapshot)
			if trayManager != nil {
				trayManager.SetRunning(session.RunState == model.RunRunning)
				trayManager.SetStatus(fmt.Sprintf("%s %s",
					session.Kind.Title(), model.FormatClock(session.Remaining)))
			}
		})
	})
	defer unsubscribe()

	mainWindow.Render(sessionEngine.Snapshot())

	splash.Show(fyneApp, splashDuration, func() {
		mainWindow.Show()
	})

	fyneApp.Run()
}
