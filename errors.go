// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import "errors"

// ErrNotSorted is returned by a Build function when the input key
// sequence is not strictly increasing (spec's INPUT_NOT_SORTED).
var ErrNotSorted = errors.New("strie: keys are not strictly sorted")

// ErrContractViolation documents the other error kind a caller can hit:
// find-close called on a close bracket, an out-of-range rank/select
// index, or a query against a trie that failed to build. These are
// programmer errors rather than recoverable conditions, so the
// internal packages that detect them panic rather than returning this
// value — it is declared so the contract has a name, not because any
// call in this package returns it. A missing key is never reported
// this way; Contains simply returns false.
var ErrContractViolation = errors.New("strie: contract violation")
