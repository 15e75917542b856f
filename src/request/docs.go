// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package request builds [JSON-RPC 2.0] request and notification payloads.
//
// A [Message] is an ordered mapping whose members always render in the order
// jsonrpc, method, params, id. Arguments are shaped into params as follows:
//
//   - positional only: params is an array in call order
//   - keyword only ([Keyword]): params is an object in call order
//   - both: params is an array of the positional arguments followed by one
//     trailing object holding the keyword arguments
//   - neither: params is omitted
//
// Requests draw their id from the [IDSource] installed on a [Builder] unless
// [WithID] supplies one. The package-level functions use [Default], whose
// source is a [Counter] starting at 1 and can be swapped with [SetIDSource]
// and restored with [ResetIDSource].
//
// Example:
//
//	msg, err := request.Request("find", "Foo", request.Keyword("age", 42))
//	if err != nil {
//		return err
//	}
//	fmt.Println(msg) // {"jsonrpc": "2.0", "method": "find", "params": ["Foo", {"age": 42}], "id": 1}
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package request
