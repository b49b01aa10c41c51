/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package app is a minimal platform hierarchy used by the registry tests.
package app

// FragmentManager holds fragments.
type FragmentManager interface{}

// Fragment is the root entity type.
type Fragment struct{}

// DialogFragment is a fragment showing a dialog.
type DialogFragment struct{ Fragment }

// Activity hosts a FragmentManager.
type Activity struct{}
