// Package dev provides the preview server and live reload.
//
// The preview server serves every tree document in the configured
// directory as an HTML page at /view/{name} and lists them at /. While it
// runs, a Watcher reports changes under that directory; changed documents
// are rebuilt and connected browsers reload over a WebSocket, or show an
// error overlay when the build fails.
//
// # Components
//
//   - Watcher: fsnotify-based recursive watcher with debouncing
//   - Server: chi router serving pages and /metrics
//   - ReloadServer: notifies browsers of changes via WebSocket
//
// # Usage
//
//	cfg, _ := config.LoadOrDefault(".")
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Configuration changes are picked up on restart.
package dev
