// Package globs2 reads and writes the glob files of a shared-mime-info
// database and feeds them to a glob.Registry.
//
// The globs2 format has one record per line:
//
//	# comment
//	50:text/plain:*.txt
//	50:text/x-c++src:*.C:cs
//	50:text/x-readme:__NOGLOBS__
//
// Fields are weight, MIME type, pattern and an optional comma separated flag
// list, where "cs" marks the pattern case-sensitive. The pattern
// "__NOGLOBS__" drops every glob loaded so far for that MIME type, which lets
// a later database directory replace the globs of an earlier one.
//
// The legacy globs format has "mimetype:pattern" lines at the default weight.
//
// A directory that has not been compiled yet only holds the XML package
// sources under mime/packages. Those are read directly:
//
//	<mime-info xmlns="http://www.freedesktop.org/standards/shared-mime-info">
//	  <mime-type type="text/x-readme">
//	    <glob-deleteall/>
//	    <glob pattern="README*" weight="10"/>
//	    <glob pattern="*.C" case-sensitive="true"/>
//	  </mime-type>
//	</mime-info>
//
// Missing weights default to 50 and <glob-deleteall/> acts like
// "__NOGLOBS__" at its position.
package globs2
