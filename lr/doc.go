/*
Package lr groups the Earley-parsing machinery: iteratable.Set, an
insertion-ordered set used to represent an Earley set, and earley, the
recognizer and ambiguity/tree-resolution logic built on top of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr
