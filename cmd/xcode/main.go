// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xcode drives the charset package from the command line:
// transcoding a file to or from UTF-8, listing registered encodings, and
// detecting the current locale's encoding.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mloar/charset"
	"github.com/mloar/charset/xcode"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xcode",
		Short: "Transcode text between legacy encodings and UTF-8",
	}

	var encodingName string
	var namespaceName string

	toUTF8Cmd := &cobra.Command{
		Use:   "to-utf8 [file]",
		Short: "Decode a file from --encoding to UTF-8 on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(encodingName, namespaceName)
			if err != nil {
				return err
			}
			in, err := openArg(args)
			if err != nil {
				return err
			}
			defer in.Close()
			_, err = io.Copy(os.Stdout, xcode.Transcode(in, id, charset.UTF8))
			return err
		},
	}
	toUTF8Cmd.Flags().StringVarP(&encodingName, "encoding", "e", "", "source encoding name (required)")
	toUTF8Cmd.Flags().StringVarP(&namespaceName, "namespace", "n", "local", "name namespace: local, mime, x11")
	toUTF8Cmd.MarkFlagRequired("encoding")

	fromUTF8Cmd := &cobra.Command{
		Use:   "from-utf8 [file]",
		Short: "Encode a UTF-8 file to --encoding on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(encodingName, namespaceName)
			if err != nil {
				return err
			}
			in, err := openArg(args)
			if err != nil {
				return err
			}
			defer in.Close()
			_, err = io.Copy(os.Stdout, xcode.Transcode(in, charset.UTF8, id))
			return err
		},
	}
	fromUTF8Cmd.Flags().StringVarP(&encodingName, "encoding", "e", "", "destination encoding name (required)")
	fromUTF8Cmd.Flags().StringVarP(&namespaceName, "namespace", "n", "local", "name namespace: local, mime, x11")
	fromUTF8Cmd.MarkFlagRequired("encoding")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered encoding's local name",
		RunE: func(cmd *cobra.Command, args []string) error {
			for n := 0; ; n++ {
				id, ok := charset.Enumerate(n)
				if !ok {
					break
				}
				fmt.Println(id)
			}
			return nil
		},
	}

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the encoding implied by the current locale environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(charset.DetectFromLocale())
			return nil
		},
	}

	rootCmd.AddCommand(toUTF8Cmd, fromUTF8Cmd, listCmd, detectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveID(name, namespaceName string) (*charset.ID, error) {
	if name == "" {
		return nil, fmt.Errorf("encoding name required")
	}
	ns, err := parseNamespace(namespaceName)
	if err != nil {
		return nil, err
	}
	id, err := charset.Lookup(ns, name)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func parseNamespace(s string) (charset.Namespace, error) {
	switch s {
	case "local", "":
		return charset.NamespaceLocal, nil
	case "mime":
		return charset.NamespaceMIME, nil
	case "x11":
		return charset.NamespaceX11, nil
	default:
		return 0, fmt.Errorf("unknown namespace %q: want local, mime, or x11", s)
	}
}

func openArg(args []string) (*os.File, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	return os.Open(args[0])
}
