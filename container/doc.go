// Package container implements the eight associative containers:
// TreeSet, TreeMultiSet, TreeMap, TreeMultiMap (red-black tree backed)
// and HashSet, HashMultiSet, HashMap, HashMultiMap (hash backed). All
// eight share the same cellist/rbtree/hashindex data flow: an insert
// mutates the list, then the index, then returns an iterator over the
// list; an erase removes the cell from the index, then from the list.
package container
