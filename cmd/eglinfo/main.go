// SPDX-License-Identifier: Unlicense OR MIT

// Command eglinfo lists the EGL configs of the default display and
// optionally probes context creation with one of them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"eglwgl.org/egl"
)

var (
	configPath  = flag.String("config", "", "read the config criteria and context attributes from `file`.")
	writeConf   = flag.Bool("write-config", false, "write the configuration to the config file and exit.")
	probeConfig = flag.Bool("probe", false, "create a window surface and a context with the first matching config.")
	listAll     = flag.Bool("all", false, "list every config, ignoring max_configs.")
	verbose     = flag.Bool("v", false, "log debug output.")
)

func init() {
	// Contexts are current per OS thread.
	runtime.LockOSThread()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, mainUsage, defaultConfigPath())
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "eglinfo: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	log := newLogger(*verbose)
	egl.SetLogger(log)

	path, explicit := *configPath, *configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	conf, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	if *writeConf {
		return writeConfig(path, conf)
	}

	if err := egl.BindAPI(egl.OpenGLAPI); err != nil {
		return fmt.Errorf("BindAPI: %w", err)
	}
	d := egl.GetDisplay(egl.DefaultDisplay)
	major, minor, err := d.Initialize()
	if err != nil {
		return fmt.Errorf("Initialize: %w", err)
	}
	defer egl.ReleaseProcess()

	max := conf.MaxConfigs
	if *listAll {
		max = -1
	}
	if err := printDisplay(os.Stdout, d, major, minor, max); err != nil {
		return err
	}
	matches, err := d.ChooseConfig(conf.criteria(), -1)
	if err != nil {
		return fmt.Errorf("ChooseConfig: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n%d matching configs\n", len(matches))
	shown := matches
	if max >= 0 && len(shown) > max {
		shown = shown[:max]
	}
	if err := printConfigs(os.Stdout, d, shown, termWidth()); err != nil {
		return err
	}
	if !*probeConfig {
		return nil
	}
	if len(matches) == 0 {
		return errors.New("no config to probe")
	}
	return probe(log, d, matches[0], conf.contextAttribs())
}

func printDisplay(w io.Writer, d *egl.Display, major, minor, max int) error {
	fmt.Fprintf(w, "EGL %d.%d\n", major, minor)
	for _, s := range []struct {
		name string
		id   egl.Int
	}{
		{"vendor", egl.Vendor},
		{"version", egl.Version},
		{"client apis", egl.ClientAPIs},
		{"extensions", egl.Extensions},
	} {
		v, err := d.QueryString(s.id)
		if err != nil {
			return fmt.Errorf("QueryString(%s): %w", s.name, err)
		}
		fmt.Fprintf(w, "%-12s %s\n", s.name+":", v)
	}
	n, err := d.NumConfigs()
	if err != nil {
		return err
	}
	cfgs, err := d.GetConfigs(max)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d configs\n", n)
	return printConfigs(w, d, cfgs, termWidth())
}

const mainUsage = `The eglinfo command lists the EGL configs of the default display.

Usage:

	eglinfo [flags]

The configs matching the [config] section of the config file are listed
after all configs. With -probe, eglinfo creates a hidden window, a window
surface with the first matching config and a context with the attributes
of the [context] section, makes the context current and swaps once.

The config file defaults to %s.

Flags:

	-config file
		read the config criteria and context attributes from file.
	-write-config
		write the configuration to the config file and exit.
	-probe
		create a window surface and a context with the first matching config.
	-all
		list every config, ignoring max_configs.
	-v
		log debug output.
`
