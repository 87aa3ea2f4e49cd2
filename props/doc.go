// Package props implements custom game properties: a global schema of
// declared property names and the two-tier override chain that resolves
// an entity's effective value.
//
// Resolution order is fixed: the entity's runtime override wins, then its
// author-time static value, then the schema default. Script set calls
// write only the runtime tier.
package props
