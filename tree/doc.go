// Package tree provides the document tree that typed values are encoded into.
//
// A Node is a recursive tagged union covering the YAML data model:
//
//   - NullType: null
//   - BoolType: true or false, in Bool
//   - IntType: a 64-bit signed integer, in Int
//   - RealType: a floating point number kept in its text form, in Text
//   - StringType: a string, in Text
//   - ArrayType: an ordered list, in Values
//   - HashType: ordered key/value pairs, keys in Fields and values in Values
//
// Hash keys may be any node. Insertion order is preserved and duplicate keys
// are kept as they were inserted; nothing in this package sorts or dedups.
//
// # Creating Nodes
//
//	obj := tree.FromKeyVals([]tree.KeyVal{
//	    {Key: tree.FromString("name"), Val: tree.FromString("alice")},
//	    {Key: tree.FromString("age"), Val: tree.FromInt(30)},
//	})
//
// or incrementally:
//
//	arr := tree.NewArray(2)
//	arr.Append(tree.FromBool(true))
//	arr.Append(tree.Null())
package tree
