// SPDX-FileCopyrightText: Copyright 2025 SAP SE or an SAP affiliate company
//
// SPDX-License-Identifier: Apache-2.0

package netvisor

import (
	"strconv"

	"github.com/iancoleman/strcase"
)

// argument renders a single optional field into zero or more cli tokens.
type argument interface {
	Key() string
	Present() bool
	Tokens() []string
}

// stringArg renders as "<token> <value>".
type stringArg struct {
	key   string
	token string
	value *string
}

func (a stringArg) Key() string   { return a.key }
func (a stringArg) Present() bool { return a.value != nil && *a.value != "" }

func (a stringArg) Tokens() []string {
	if !a.Present() {
		return nil
	}
	return []string{a.token, *a.value}
}

type intArg struct {
	key   string
	token string
	value *int64
}

func (a intArg) Key() string   { return a.key }
func (a intArg) Present() bool { return a.value != nil }

func (a intArg) Tokens() []string {
	if !a.Present() {
		return nil
	}
	return []string{a.token, strconv.FormatInt(*a.value, 10)}
}

// toggleArg renders the on token for True and the off token for False.
type toggleArg struct {
	key   string
	on    string
	off   string
	value TriState
}

func (a toggleArg) Key() string   { return a.key }
func (a toggleArg) Present() bool { return a.value.IsSet() }

func (a toggleArg) Tokens() []string {
	switch a.value {
	case True:
		return []string{a.on}
	case False:
		return []string{a.off}
	default:
		return nil
	}
}

// affixArg glues the value between a fixed prefix and suffix into one token,
// e.g. failover-move-L2.
type affixArg struct {
	key    string
	prefix string
	suffix string
	value  *string
}

func (a affixArg) Key() string   { return a.key }
func (a affixArg) Present() bool { return a.value != nil && *a.value != "" }

func (a affixArg) Tokens() []string {
	if !a.Present() {
		return nil
	}
	return []string{a.prefix + *a.value + a.suffix}
}

func token(key string) string {
	return strcase.ToKebab(key)
}

func str(key string, v *string) argument {
	return stringArg{key: key, token: token(key), value: v}
}

func strAs(key, tok string, v *string) argument {
	return stringArg{key: key, token: tok, value: v}
}

func integer(key string, v *int64) argument {
	return intArg{key: key, token: token(key), value: v}
}

func toggle(key string, v TriState) argument {
	return toggleArg{key: key, on: token(key), off: "no-" + token(key), value: v}
}

func toggleAs(key, on, off string, v TriState) argument {
	return toggleArg{key: key, on: on, off: off, value: v}
}

func affix(key, prefix, suffix string, v *string) argument {
	return affixArg{key: key, prefix: prefix, suffix: suffix, value: v}
}
