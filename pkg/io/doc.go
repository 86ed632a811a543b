// Package io reads edge tables for the Sankey engine.
//
// The upstream table editor produces partial rows while the user types, so
// the codecs here drop malformed rows silently instead of reporting them:
// a row missing its source, target, or value never reaches the engine. Rows
// with negative or non-finite values are dropped for the same reason.
//
// Two formats are supported: CSV (source,target,value columns, header row
// optional) via [ReadCSV]/[ImportCSV], and JSON edge lists via
// [ReadJSON]/[ImportJSON].
package io
