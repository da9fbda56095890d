/*
Package config loads the optional relocation settings file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |  JSON   |  |   HCL   |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Reads source, destination, jobs, buffer_size, link and log_level
- Picks the format from the file extension
- Rejects unknown fields

🔄 Flow:
1. Start from Default()
2. Decode the file over the defaults
3. Validate the merged result

Command line flags are applied by the caller after loading, so a flag always
wins over the file.

🔍 Example:

	source      = "${env.HOME}/DCIM"
	destination = "/mnt/archive/photos"
	jobs        = 8
	link        = false
*/
package config
