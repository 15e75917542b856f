// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers that behave the same on every operating
// system, such as deriving the executable name shown in CLI usage strings.
package posix
