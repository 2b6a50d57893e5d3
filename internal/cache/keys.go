// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

type KeyKind string

const (
	KindSubdomain KeyKind = "subdomain"
	KindDomain    KeyKind = "domain"
)

// Key identifies a tenant lookup, tagged by the resolution strategy that produced it
type Key struct {
	Kind  KeyKind
	Value string
}

func SubdomainKey(slug string) Key {
	return Key{Kind: KindSubdomain, Value: slug}
}

func DomainKey(host string) Key {
	return Key{Kind: KindDomain, Value: host}
}

func (k Key) String() string {
	return "tenant:" + string(k.Kind) + ":" + k.Value
}
