/*
Copyright 2025-2026 the Folio CMS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/folio-cms/conformance/pkg/smoke"
	"github.com/folio-cms/conformance/test/api"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func main() {
	config, err := api.LoadTestConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	options := smoke.NewOptions(config)

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	options.SetupLogging()

	logger := log.Log.WithName("smoke")

	if err := options.Validate(); err != nil {
		logger.Error(err, "invalid options")
		os.Exit(1)
	}

	logger.Info("smoke test starting", "url", options.APIURL, "write", !options.NoWrite)

	ctx := cr.SetupSignalHandler()

	client, err := api.NewAPIClientWithConfig(options.Config(), api.WithLogWriter(os.Stderr))
	if err != nil {
		logger.Error(err, "failed to create client")
		os.Exit(1)
	}

	if err := smoke.NewRunner(options, client, logger).Run(ctx); err != nil {
		logger.Error(err, "smoke test failed")
		os.Exit(1)
	}

	logger.Info("smoke test passed")
}
