// Package config provides configuration parsing for skooma projects.
//
// The configuration is stored in skooma.json at the project root. Every
// field is optional; missing values take the defaults from New.
//
// # Configuration File Structure
//
//	{
//	  "dev": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "dir": "trees",
//	    "hotReload": true
//	  },
//	  "render": {
//	    "pretty": false,
//	    "sanitize": true,
//	    "lang": "en",
//	    "styleSheets": ["/site.css"]
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1",
//	    "endpoint": "http://localhost:9000",
//	    "pathStyle": true
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Dev.Port)
package config
