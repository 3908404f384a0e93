// Package script evaluates Lua blueprint scripts.
//
// Large profiles get repetitive in declarative form; a Lua blueprint can
// loop and build tables instead. The script drives the same entry types
// the TOML/YAML loaders produce, through a small module registered as
// "mm":
//
//	mm.title("Naga HyperSpeed")
//	mm.device{ vendor_id = 0x1532, product_id = 0x00b4 }
//
//	mm.layer{ variable = "hyper", button = "button3" }
//
//	for i, key in ipairs({"1", "2", "3"}) do
//	    mm.button{
//	        id = tostring(i),
//	        layer = "hyper",
//	        keys = { key },
//	        modifiers = { "left_option", "left_shift" },
//	        optional_any = true,
//	    }
//	end
//
// The Lua state is sandboxed: only the base, table, string, and math
// libraries are opened, so a blueprint cannot touch the file system or
// spawn processes.
package script
