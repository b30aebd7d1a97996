package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"chessai/internal/server/game"
	httpserver "chessai/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser; nothing to do about it
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with the board UI assets")
	workers := flag.Int("workers", runtime.NumCPU(), "goroutines per engine move")
	open := flag.Bool("open", false, "open the UI in the default browser")
	flag.Parse()

	games := game.NewManager(game.WithWorkers(*workers))
	h := httpserver.NewHandler(games)
	mux := httpserver.NewRouter(h, *webDir)

	log.Printf("listening on %s, serving UI from %s, %d search workers", *addr, *webDir, *workers)

	if *open {
		// give the listener a moment before the browser hits it
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
