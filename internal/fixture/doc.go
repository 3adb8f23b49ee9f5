// Package fixture reads and writes YAML documents of named scalar values.
//
//	version: "1"
//	values:
//	  - name: title
//	    datatype: str
//	    value: hello
//	  - name: when
//	    datatype: timestamp
//	    value: 1700000000000   # or 2023-11-14T22:13:20Z
//	  - name: raw
//	    datatype: unknown9
//	    value: AQID            # base64
//	  - name: inferred
//	    value: 42              # no datatype: int from the YAML tag
//
// Bytes and unknown values are base64 text. Counters are written as their
// current value.
package fixture
