// SPDX-License-Identifier: EPL-2.0

// Package config loads the streamfmt CLI settings from a YAML file.
package config
