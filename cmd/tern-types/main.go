/*
 * Tern - A gradual type system for dynamic languages
 *
 * Copyright Tern Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// tern-types is a debugging tool for serialized type trees:
// it reads an encoded type from stdin and prints it back
// in the requested representation.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/tern-lang/tern/encoding/typecbor"
	"github.com/tern-lang/tern/types"
)

const prettyMaxLineWidth = 80

func main() {
	if len(os.Args) < 2 {
		_, _ = fmt.Fprintf(os.Stderr, "expected command\n")
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "decode-json":
		ty := readType(func(data []byte) (types.Type, error) {
			return types.DecodeType(data)
		})
		_, _ = pp.Print(ty)

	case "decode-cbor":
		ty := readType(typecbor.Decode)
		_, _ = pp.Print(ty)

	case "render":
		ty := readType(func(data []byte) (types.Type, error) {
			return types.DecodeType(data)
		})
		fmt.Println(ty.String())
		fmt.Println(types.Pretty(ty, prettyMaxLineWidth))

	default:
		_, _ = fmt.Fprintf(os.Stderr, "unsupported command: %s", command)
		os.Exit(1)
	}
}

func readType(decode func([]byte) (types.Type, error)) types.Type {
	var data bytes.Buffer
	reader := bufio.NewReader(os.Stdin)
	_, err := io.Copy(&data, reader)
	if err != nil {
		panic(err)
	}

	ty, err := decode(data.Bytes())
	if err != nil {
		panic(err)
	}

	return ty
}
