// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package strie implements a family of succinct tries: immutable,
// read-only string-set dictionaries that store tree topology close to
// the information-theoretic lower bound instead of paying a pointer per
// edge.
//
// Three encodings are provided, trading construction simplicity against
// space and lookup cost: Louds (level-order, no find-close dependency),
// Dfuds (depth-first, O(1) child access via find-close), and Centroid
// (path-compressed Dfuds with inline heavy-child labels). All three are
// built once from a sorted, duplicate-free key sequence and support
// Contains, Size and Empty thereafter; none support updates.
package strie
