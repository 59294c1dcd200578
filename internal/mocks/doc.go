// Package mocks provides hand-written test doubles shared by several packages.
package mocks
