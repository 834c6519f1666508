/*
Package dyntree implements a dynamic segment tree: a tree-structured
mapping from a contiguous range of integer keys to values, supporting
four operations — set a sub-range to a value, apply an update operator
over a sub-range, read the value at a single key, and aggregate a
sub-range into a combined result.

The tree is "dynamic" in that it only materializes nodes along the
boundaries of the ranges written to it: a Set that covers a node's
whole span collapses that subtree to a single leaf, each range boundary
costs at most a logarithmic number of nodes, and queries or updates
that only ever touch whole leaves never split them. Neighbouring leaves
that happen to hold equal values are not merged.
This lets a Tree span huge key ranges — for example scheduling a
million-slot calendar, or tracking per-index counters over a 64-bit
key space — while using memory proportional to how fragmented the
data actually is, not to the size of the range.

Operations

Set assigns a value to every key in a range.

Update applies a caller-supplied operator to every key in a range,
pushing the update lazily down the tree rather than visiting every
affected leaf eagerly.

Get reads the value at a single key.

RangeGet folds a range into an aggregate value via a caller-supplied
initializer and combiner, the building blocks of a generic
Fenwick/segment-tree-style range query (sum, min, max, or anything
else expressible as an associative combine).

Update and RangeGet are optional capabilities: a Tree built without a
Config.Updater rejects Update calls with ErrUpdateDisabled, and one
built without a Config.Aggregator rejects RangeGet calls with
ErrRangeGetDisabled, instead of requiring a distinct generated type per
combination of capabilities.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package dyntree
