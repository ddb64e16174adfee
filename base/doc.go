/*

Package base provides base data structures and functions for floatx.

The base data structures and functions include:

* Parallel Scheduler

* Random Generator

*/
package base
