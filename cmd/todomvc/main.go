// Command todomvc is the development tool for the TodoMVC app. Its serve
// command compiles the app to WebAssembly, serves it locally, and rebuilds
// whenever a source file changes.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

var (
	servePort int

	buildMutex      sync.RWMutex
	currentBuildDir string
)

// indexHTML is the HTML shell served at the root; the app renders itself
// into <body>.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>TodoMVC</title>
    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch("bundle.wasm"), go.importObject).then((result) => {
            go.run(result.instance);
        });
    </script>
</head>
<body>
</body>
</html>`

var rootCmd = &cobra.Command{Use: "todomvc"}

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Build and serve the TodoMVC app locally",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to serve on")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	appDir := "./app"
	if len(args) > 0 {
		appDir = args[0]
	}
	if err := checkMainPackage(appDir); err != nil {
		return err
	}

	buildDir, err := buildWASM(appDir)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	currentBuildDir = buildDir

	port, ln, err := findFreePort(servePort)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/bundle.wasm", buildFileHandler("bundle.wasm"))
	mux.HandleFunc("/wasm_exec.js", buildFileHandler("wasm_exec.js"))

	fmt.Printf("Serving %s on http://localhost:%d\n", appDir, port)

	var g errgroup.Group
	g.Go(func() error {
		return http.Serve(ln, mux)
	})
	g.Go(func() error {
		return watchFiles(appDir, func() error {
			fmt.Println("Rebuilding...")
			newBuildDir, err := buildWASM(appDir)
			if err != nil {
				return fmt.Errorf("error rebuilding WASM: %w", err)
			}
			buildMutex.Lock()
			old := currentBuildDir
			currentBuildDir = newBuildDir
			buildMutex.Unlock()
			os.RemoveAll(old)
			fmt.Println("Rebuild complete")
			return nil
		})
	})
	return g.Wait()
}

// checkMainPackage verifies that dir holds a buildable main package before
// we hand it to the compiler.
func checkMainPackage(dir string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("failed to load package in %s: %w", dir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Name != "main" {
		return fmt.Errorf("%s does not contain a main package", dir)
	}
	return nil
}

// buildWASM compiles the Go app in appDir to WebAssembly in a fresh
// temporary directory and copies wasm_exec.js next to it.
func buildWASM(appDir string) (string, error) {
	buildDir, err := os.MkdirTemp("", "todomvc-build-*")
	if err != nil {
		return "", err
	}
	outWasm := filepath.Join(buildDir, "bundle.wasm")
	cmd := exec.Command("go", "build", "-o", outWasm, ".")
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Dir = appDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}
	wasmExecSrc := filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
	if err := copyFile(wasmExecSrc, filepath.Join(buildDir, "wasm_exec.js")); err != nil {
		return "", err
	}
	return buildDir, nil
}

// copyFile copies a file from src to dst, creating parent directories.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

// findFreePort listens on the preferred port, falling back to an
// OS-assigned one if it is taken.
func findFreePort(preferredPort int) (int, net.Listener, error) {
	if preferredPort > 0 {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", preferredPort))
		if err == nil {
			return preferredPort, ln, nil
		}
		fmt.Printf("Port %d is in use, finding alternative...\n", preferredPort)
	}
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, nil, err
	}
	return ln.Addr().(*net.TCPAddr).Port, ln, nil
}

// watchFiles watches Go source files under the module and calls onRebuild,
// debounced, when any of them change.
func watchFiles(appDir string, onRebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error setting up file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the app directory and every package directory of the module,
	// skipping hidden and underscore-prefixed directories the way the Go
	// toolchain does.
	moduleRoot := filepath.Dir(filepath.Clean(appDir))
	err = filepath.Walk(moduleRoot, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			return nil
		}
		name := info.Name()
		if path != moduleRoot && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		if watchErr := watcher.Add(path); watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", path, watchErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error walking %s for file watching: %w", moduleRoot, err)
	}

	// Debounce rapid sequences of file events into a single rebuild.
	rebuildTimer := time.NewTimer(0)
	if !rebuildTimer.Stop() {
		<-rebuildTimer.C
	}
	rebuildPending := false
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				ext := filepath.Ext(event.Name)
				if ext == ".go" || ext == ".mod" || ext == ".sum" {
					fmt.Printf("File changed (%s), scheduling rebuild...\n", event.Name)
					if !rebuildTimer.Stop() && rebuildPending {
						<-rebuildTimer.C
					}
					rebuildTimer.Reset(debounceDelay)
					rebuildPending = true
				}
			}
		case <-rebuildTimer.C:
			if rebuildPending {
				if err := onRebuild(); err != nil {
					fmt.Fprintf(os.Stderr, "Error during rebuild: %v\n", err)
				}
				rebuildPending = false
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}

// indexHandler serves the HTML shell for the app root.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// buildFileHandler serves a file out of the current build directory.
func buildFileHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buildMutex.RLock()
		dir := currentBuildDir
		buildMutex.RUnlock()
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
