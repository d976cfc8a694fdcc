//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor implements the notes of rhinote.
// An editor manages multiple windows; each window owns one document
// and every open window is held by a registry in creation order.
// Windows are destroyed only through a close protocol that offers
// to save unsaved changes and refuses to lose them on a failed save.
package editor
