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

package charset

import (
	"os"
	"strings"
)

// DetectFromLocale implements spec.md's detect_from_locale: read the POSIX
// locale environment (LC_ALL, then LC_CTYPE, then LANG, in that priority
// order) and return the *ID its codeset names, defaulting to ASCII.
//
// Stdlib only (os.Getenv, strings) — deliberately, unlike every other
// component in this package. None of the retrieval pack's dependencies
// parse POSIX locale strings, and os.Getenv plus a dot-split is the entire
// job; reaching for a library here would be inventing a dependency rather
// than reusing one.
func DetectFromLocale() *ID {
	locale := firstNonEmpty(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG"))
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ASCII
	}

	codeset := locale
	if i := strings.IndexByte(codeset, '.'); i >= 0 {
		codeset = codeset[i+1:]
	}
	if i := strings.IndexByte(codeset, '@'); i >= 0 {
		codeset = codeset[:i]
	}
	codeset = strings.ToLower(codeset)
	if codeset == "" {
		return ASCII
	}

	if id, err := lookupIDByName(codeset); err == nil {
		return id
	}
	if id, err := lookupIDByName(strings.ReplaceAll(codeset, "_", "-")); err == nil {
		return id
	}
	return ASCII
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
