// Package patch rewrites a SPIR-V module from Logical addressing to
// PhysicalStorageBuffer64 addressing and locates source lines in its
// embedded debug line table.
//
// The pipeline works on a mutable clone of the parsed module's word stream;
// the module itself is never touched. Apply sequences the steps: rewrite
// the addressing-model operand, insert the SPV_KHR_physical_storage_buffer
// extension and the PhysicalStorageBufferAddresses capability at their
// section boundaries, and resolve the requested (file, line) coordinate to
// its enclosing function and local variables. Any step failing aborts the
// whole operation; the partially mutated clone is simply discarded.
//
// Section anchors are word offsets captured before any edit, and every
// insertion shifts all later offsets. Cursor resolves an original anchor
// against the insertions already applied, so anchors stay valid in any
// insertion order.
package patch
