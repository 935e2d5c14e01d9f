// Package config loads the YAML configuration of the azrest tools and of
// applications wiring the clients with fx. Environment variables prefixed
// with AZREST_<SECTION>_ override file values; see Config for the sections.
package config
