// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017-2024 The nekod developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/jessevdk/go-flags"
)

// nekodMain is the real main function for nekod.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func nekodMain() error {
	// Load configuration and parse command line.  This function also
	// selects the network and initializes logging.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		return nil
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	params := cfg.params
	if cfg.ShowParams {
		if err := writeParams(os.Stdout, params); err != nil {
			nekdLog.Errorf("Unable to write network parameters: %v", err)
			return err
		}
		return nil
	}

	// Get a context that will be canceled when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem such as the RPC server.
	ctx := shutdownListener()
	defer nekdLog.Info("Shutdown complete")

	// Show version at startup.
	nekdLog.Infof("Version %s", version())

	// Enable http profiling server if requested.
	if cfg.Profile != "" {
		go func() {
			listenAddr := net.JoinHostPort("", cfg.Profile)
			nekdLog.Infof("Profile server listening on %s", listenAddr)
			profileRedirect := http.RedirectHandler("/debug/pprof",
				http.StatusSeeOther)
			http.Handle("/", profileRedirect)
			nekdLog.Errorf("%v", http.ListenAndServe(listenAddr, nil))
		}()
	}

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			nekdLog.Errorf("Unable to create cpu profile: %v", err)
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	nekdLog.Infof("Active network: %s (magic %v, port %s)", params.Name,
		params.Magic, params.DefaultPort)
	nekdLog.Infof("Genesis block %v", params.GenesisHash)
	latest := params.Checkpoints.Latest()
	nekdLog.Infof("Last checkpoint at height %d (%v)", latest.Height,
		latest.Hash)
	if len(params.FixedSeeds) == 0 && len(params.DNSSeeds) == 0 {
		nekdLog.Warnf("No seeds are configured for the %s network, "+
			"peers must be added manually", params.Name)
	}
	for _, addr := range params.FixedSeedAddresses() {
		nekdLog.Debugf("Fixed seed %v:%d", addr.IP, addr.Port)
	}
	nekdLog.Infof("Data directory: %s", cfg.DataDir)

	if shutdownRequested(ctx) {
		return nil
	}

	// Wait until the interrupt signal is received from an OS signal or
	// shutdown is requested through one of the subsystems such as the RPC
	// server.
	<-ctx.Done()
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := nekodMain(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if errors.Is(err, errShowSubsystems) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
