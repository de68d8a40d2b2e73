// cmd/inkpress/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"inkpress/internal/builder"
	"inkpress/internal/config"
	"inkpress/internal/scaffold"
	"inkpress/internal/server"
)

type appConfig struct {
	port   int
	unsafe bool
	drafts bool
}

const (
	contentDir  = "content"
	templateDir = "templates"
	staticDir   = "static"
	outputDir   = "public"
	configFile  = "site.yaml"
)

func main() {
	appCfg := appConfig{}
	flag.IntVar(&appCfg.port, "port", 1313, "Port for the local development server.")
	flag.BoolVar(&appCfg.unsafe, "unsafe", false, "Disable HTML sanitization. Allows all raw HTML.")
	flag.BoolVar(&appCfg.drafts, "drafts", false, "Include drafts and scheduled posts in the build.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	opts := builder.BuildOptions{
		Unsafe:        appCfg.unsafe,
		IncludeDrafts: appCfg.drafts,
	}

	switch args[0] {
	case "gen":
		opts.CleanDestination = true
		fmt.Println("--- Building site ---")
		site, err := config.Load(configFile)
		if err != nil {
			return err
		}
		pageCount, err := builder.BuildSite(outputDir, contentDir, staticDir, templateDir, site, opts)
		if err != nil {
			return fmt.Errorf("site generation failed: %w", err)
		}
		fmt.Printf("✅ Success! Generated %d pages.\n", pageCount)
		return nil

	case "serve":
		// Authors previewing locally get to see drafts and scheduled
		// posts; the published build never includes them.
		opts.IncludeDrafts = true
		buildFunc := func(buildOpts builder.BuildOptions) error {
			site, err := config.Load(configFile)
			if err != nil {
				return err
			}
			pageCount, err := builder.BuildSite(outputDir, contentDir, staticDir, templateDir, site, buildOpts)
			if err != nil {
				return err
			}
			fmt.Printf("📄 Site: %d pages generated.\n", pageCount)
			return nil
		}
		watchPaths := []string{contentDir, templateDir, staticDir, configFile}
		return server.Run(appCfg.port, outputDir, watchPaths, buildFunc, opts)

	case "new":
		if len(args) < 3 {
			flag.Usage()
			return nil
		}
		if args[1] == "site" {
			return scaffold.CreateSite(args[2])
		}
		if args[1] == "post" {
			return scaffold.CreatePost(".", args[2], configFile)
		}
		flag.Usage()
		return nil

	default:
		flag.Usage()
	}

	return nil
}

func printHelp() {
	fmt.Println("inkpress - a small static site generator for blogs")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  inkpress [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  gen                Build the site into public/")
	fmt.Println("  serve              Run a local dev server with auto-rebuild and live reload")
	fmt.Println("  new site <name>    Create a new site scaffold")
	fmt.Println("  new post <title>   Create a new post from the archetype")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
