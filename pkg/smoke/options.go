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

package smoke

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/folio-cms/conformance/test/api"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var ErrMissingOption = errors.New("missing required option")

// Options configure a smoke run.  Defaults come from the harness
// configuration so the CLI honours the same environment and .env file.
type Options struct {
	APIURL   string
	Username string
	Password string
	Wait     time.Duration
	NoWrite  bool

	RequestTimeout time.Duration
	LogRequests    bool

	zapOptions zap.Options
}

// NewOptions seeds options from the harness configuration.
func NewOptions(config *api.TestConfig) *Options {
	return &Options{
		APIURL:         config.BaseURL,
		Username:       config.Username,
		Password:       config.Password,
		Wait:           time.Minute,
		RequestTimeout: config.RequestTimeout,
		LogRequests:    config.LogRequests,
	}
}

// AddFlags registers the options, including the zap logging flags.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.APIURL, "api-url", o.APIURL, "Base URL of the content API.")
	flags.StringVar(&o.Username, "username", o.Username, "Username to log in with.")
	flags.StringVar(&o.Password, "password", o.Password, "Password to log in with.")
	flags.DurationVar(&o.Wait, "wait", o.Wait, "How long to wait for the API to become ready.")
	flags.BoolVar(&o.NoWrite, "no-write", o.NoWrite, "Skip the create and delete round trip.")
	flags.DurationVar(&o.RequestTimeout, "request-timeout", o.RequestTimeout, "Per request timeout.")
	flags.BoolVar(&o.LogRequests, "log-requests", o.LogRequests, "Log every request made.")

	zapFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	o.zapOptions.BindFlags(zapFlags)
	flags.AddGoFlagSet(zapFlags)
}

// SetupLogging installs the global logger.
func (o *Options) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}

// Validate checks everything a run needs is present.
func (o *Options) Validate() error {
	if o.APIURL == "" {
		return fmt.Errorf("%w: --api-url or API_URL", ErrMissingOption)
	}

	if o.Username == "" || o.Password == "" {
		return fmt.Errorf("%w: --username/--password or TEST_USERNAME/TEST_PASSWORD", ErrMissingOption)
	}

	return nil
}

// Config converts the options into a harness configuration.
func (o *Options) Config() *api.TestConfig {
	return &api.TestConfig{
		BaseURL:        o.APIURL,
		Username:       o.Username,
		Password:       o.Password,
		RequestTimeout: o.RequestTimeout,
		LogRequests:    o.LogRequests,
	}
}
